// Package session owns the client's authentication state.
//
// Store is the in-memory session with the explicit transitions Start,
// Succeed, Fail, Logout and Restore. CredentialStore is its durable
// counterpart: two key/value rows (bearer token and serialized user) in a
// local sqlite database, written on successful login/registration, loaded
// once at boot via (*Store).RestoreFrom, and wiped on logout.
//
// The client-side expiry check in RestoreFrom is advisory. The backend
// remains the authority on whether a token is accepted.
package session
