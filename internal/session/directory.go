package session

import "github.com/chatmesh/chatmesh-go/pkg/cmap"

// Directory maps logged-in uids to their live sessions on this node.
// It is the local half of presence: the cache says which node serves a
// uid, the directory says which connection does.
type Directory struct {
	byUID *cmap.Map[int64, Session]
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{byUID: cmap.New[int64, Session]()}
}

// Put registers s as the session serving uid, replacing any previous
// entry. The previous session, if different, is returned so the caller
// can evict it.
func (d *Directory) Put(uid int64, s Session) (prev Session) {
	old, ok := d.byUID.Get(uid)
	d.byUID.Set(uid, s)
	if ok && old.ID() != s.ID() {
		return old
	}
	return nil
}

// Get returns the session serving uid on this node, if any.
func (d *Directory) Get(uid int64) (Session, bool) {
	return d.byUID.Get(uid)
}

// Remove drops the entry for uid, but only when it still points at the
// session with the given id. This keeps a slow disconnect of an old
// session from unregistering its replacement.
func (d *Directory) Remove(uid int64, sessionID string) bool {
	cur, ok := d.byUID.Get(uid)
	if !ok || cur.ID() != sessionID {
		return false
	}
	d.byUID.Delete(uid)
	return true
}

// Count returns the number of logged-in users on this node.
func (d *Directory) Count() int {
	return d.byUID.Count()
}

// Each calls fn for every live session. Used for shutdown sweeps.
func (d *Directory) Each(fn func(uid int64, s Session)) {
	d.byUID.Range(func(uid int64, s Session) bool {
		fn(uid, s)
		return true
	})
}
