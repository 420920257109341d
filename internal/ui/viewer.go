package ui

import "bundletest/internal/domain"

// Viewer displays stored runs
type Viewer interface {
	View(history []domain.RunRecord) error
}
