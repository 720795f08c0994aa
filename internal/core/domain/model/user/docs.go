// Package user provides the account aggregate and the Actor value object that
// every use case receives from the identity collaborator.
//
// The package includes:
//   - Role: Client, Owner or Delivery
//   - Actor: an already-authenticated party (id + role) performing an operation
//   - User: an account with a bcrypt password hash and email verification state
//   - Verification: a one-time email verification code
package user
