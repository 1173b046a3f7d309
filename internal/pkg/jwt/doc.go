// Package jwt issues and verifies the signed bearer credentials used by the admin API.
//
// Tokens carry the subject id and role next to the registered claims. Verification
// reports every rejection reason as a distinct sentinel error so the transport layer
// can pick the matching response.
package jwt
