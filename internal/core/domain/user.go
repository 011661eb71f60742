package domain

// Sex values as stored in the users table.
const (
	SexUnknown = 0
	SexMale    = 1
	SexFemale  = 2
)

// BaseInfo is a user profile. The canonical copy lives in the durable
// store; the cache holds a denormalized JSON mirror under
// ubaseinfo_{uid} / nameinfo_{name} which is only ever replaced by an
// explicit overwrite, never expired.
//
// Back is only populated when the profile is listed as someone's
// friend: it is that side's private display name for the user.
type BaseInfo struct {
	UID    int64  `json:"uid"`
	Name   string `json:"name"`
	Passwd string `json:"pwd"`
	Email  string `json:"email"`
	Nick   string `json:"nick"`
	Desc   string `json:"desc"`
	Sex    int    `json:"sex"`
	Icon   string `json:"icon"`
	Back   string `json:"back,omitempty"`
}

// Clone returns a copy so cached entries are never aliased by callers.
func (b *BaseInfo) Clone() *BaseInfo {
	clone := *b
	return &clone
}

// Friend-apply status values.
const (
	ApplyPending    = 0
	ApplyAuthorized = 1
)

// ApplyInfo is one pending (or already authorized) friend application,
// joined with the applicant's profile fields for display.
type ApplyInfo struct {
	ID     int64  `json:"-"` // row id, the pagination cursor
	UID    int64  `json:"uid"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Icon   string `json:"icon"`
	Nick   string `json:"nick"`
	Sex    int    `json:"sex"`
	Status int    `json:"status"`
}
