// Package lib groups internal libraries that are not business logic:
// checkout provider access, email delivery, and background jobs.
package lib
