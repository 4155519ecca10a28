package ports

import "sushitest/internal/domain"

// SuiteReader loads test case declarations
type SuiteReader interface {
	// Discover returns the suite declaration files below root (or root itself if it is a file)
	Discover(root string) ([]string, error)
	// Read loads one suite declaration file
	Read(path string) (*domain.Suite, error)
}
