// Package utils provides common utility functions for the chr-catalog application.
// It includes helper functions for parsing user-supplied identifier lists and other
// shared logic that doesn't fit into domain-specific packages.
package utils
