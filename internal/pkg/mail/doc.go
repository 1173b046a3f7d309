// Package mail sends email. Callers build a Message and hand it to a Mail
// implementation; SMTP is the only provider.
package mail
