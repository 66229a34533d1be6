/*
Package auth validates the admin bearer token.

Admin routes are gated by a single static token configured at startup
(ADMIN_TOKEN). Requests carry it in the Authorization header:

	Authorization: Bearer <token>

ValidateBearer returns ErrInvalidToken for a missing prefix or a
mismatched token; the comparison is constant-time.
*/
package auth
