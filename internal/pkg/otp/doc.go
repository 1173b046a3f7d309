// Package otp generates the numeric one-time codes mailed to admins during
// login, password and email change flows.
package otp
