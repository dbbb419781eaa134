// Package git executes git remote operations (fetch, pull, push, clone) by
// invoking the external git binary and normalizing its outcome into the
// result contract consumed by the front end. Credentials are threaded to the
// subprocess through a per-invocation askpass helper, never through argv or
// the environment map, and a platform credential cache can be provisioned so
// a password is not re-prompted for every remote call.
package git
