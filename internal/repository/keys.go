package repository

// Keys builds the store key layout. Everything the app persists lives under
// one configurable prefix:
//
//	{prefix}current_user_id      pointer to the logged-in user
//	{prefix}current_session_code pointer to the logged-in session
//	{prefix}{CODE}               the PairingSession record
//	{prefix}{CODE}_{collection}  per-session posts / album / goals
type Keys struct {
	Prefix string
}

// DefaultPrefix matches the original installation layout
const DefaultPrefix = "lovesync_"

func (k Keys) prefix() string {
	if k.Prefix == "" {
		return DefaultPrefix
	}
	return k.Prefix
}

// Session returns the key holding the session record for code
func (k Keys) Session(code string) string {
	return k.prefix() + code
}

// Collection returns the composite key for a session-scoped collection
func (k Keys) Collection(code, name string) string {
	return k.prefix() + code + "_" + name
}

// CurrentUserID returns the pointer key naming the logged-in user
func (k Keys) CurrentUserID() string {
	return k.prefix() + "current_user_id"
}

// CurrentSessionCode returns the pointer key naming the logged-in session
func (k Keys) CurrentSessionCode() string {
	return k.prefix() + "current_session_code"
}
