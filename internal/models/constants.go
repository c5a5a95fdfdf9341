package models

// ============================================================================
// PROJECT CONSTANTS
// ============================================================================

// DefaultProjectImage is the placeholder image assigned to new projects
const DefaultProjectImage = "https://picsum.photos/600/400"

// ============================================================================
// EXPORT CONSTANTS
// ============================================================================

// Export file names
const (
	JSONExportFilename = "portfolio_data.json"
	HTMLExportFilename = "portfolio.html"
)

// DefaultSlotKey is the storage key holding the serialized document
const DefaultSlotKey = "portfolioGeneratorData"
