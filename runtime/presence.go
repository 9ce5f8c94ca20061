package runtime

import (
	"sort"
)

// presence counts open connections per (workspace, user).
// A user is online in a workspace iff its count is positive; there is no
// other presence flag. It is owned by the Registry and only mutated under
// the registry lock, through join and leave.
type presence struct {
	workspaces map[string]map[string]int
}

func newPresence() *presence {
	return &presence{workspaces: make(map[string]map[string]int)}
}

// increment returns the new count for the user in the workspace.
func (p *presence) increment(workspaceID, userID string) int {
	bucket, ok := p.workspaces[workspaceID]
	if !ok {
		bucket = make(map[string]int)
		p.workspaces[workspaceID] = bucket
	}
	bucket[userID]++
	return bucket[userID]
}

// decrement returns the remaining count. The entry is removed at zero and the
// workspace bucket is removed once empty.
func (p *presence) decrement(workspaceID, userID string) int {
	bucket, ok := p.workspaces[workspaceID]
	if !ok {
		return 0
	}
	count, ok := bucket[userID]
	if !ok {
		return 0
	}
	count--
	if count > 0 {
		bucket[userID] = count
		return count
	}
	delete(bucket, userID)
	if len(bucket) == 0 {
		delete(p.workspaces, workspaceID)
	}
	return 0
}

// snapshot returns the sorted online users of a workspace.
func (p *presence) snapshot(workspaceID string) []string {
	bucket := p.workspaces[workspaceID]
	users := make([]string, 0, len(bucket))
	for userID, count := range bucket {
		if count > 0 {
			users = append(users, userID)
		}
	}
	sort.Strings(users)
	return users
}

func (p *presence) count(workspaceID, userID string) int {
	return p.workspaces[workspaceID][userID]
}

func (p *presence) onlineUsers() int {
	total := 0
	for _, bucket := range p.workspaces {
		total += len(bucket)
	}
	return total
}
