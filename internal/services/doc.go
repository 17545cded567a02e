// Package services defines the shared error taxonomy for external tool
// wrappers and hosts one subpackage per wrapped tool.
package services
