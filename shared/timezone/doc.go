// Package timezone centralizes time handling in the configured application
// timezone so timestamps rendered to admins and stamped on rows agree.
package timezone
