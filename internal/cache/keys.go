package cache

import "strconv"

// Key prefixes. These are shared with the gate and status services that
// write tokens and read presence, so the exact spellings are contract.
const (
	prefixToken    = "utoken_"
	prefixHost     = "uip_"
	prefixBaseInfo = "ubaseinfo_"
	prefixNameInfo = "nameinfo_"
	prefixSession  = "usession_"
	prefixLock     = "lock_"
)

// TokenKey is the login token for a uid, written at auth time by the
// status service and checked once on login.
func TokenKey(uid int64) string {
	return prefixToken + strconv.FormatInt(uid, 10)
}

// HostKey maps a uid to the name of the node currently serving it.
func HostKey(uid int64) string {
	return prefixHost + strconv.FormatInt(uid, 10)
}

// BaseInfoKey is the JSON profile mirror for a uid.
func BaseInfoKey(uid int64) string {
	return prefixBaseInfo + strconv.FormatInt(uid, 10)
}

// NameInfoKey is the JSON profile mirror keyed by login name.
func NameInfoKey(name string) string {
	return prefixNameInfo + name
}

// SessionKey maps a uid to its current session id on the serving node.
func SessionKey(uid int64) string {
	return prefixSession + strconv.FormatInt(uid, 10)
}

// LockKey is the per-user distributed lock guarding login and kick.
func LockKey(uid int64) string {
	return prefixLock + strconv.FormatInt(uid, 10)
}
