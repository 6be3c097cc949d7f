package errors

import "image"

// maxIconSize bounds requested pixel sizes. Anything above this is almost
// certainly a typo and would allocate gigabytes of raster memory.
const maxIconSize = 8192

// ValidateSquare validates that a decoded source image is square.
// The generation engine refuses to proceed on non-square input because
// every platform ladder assumes a 1:1 aspect ratio.
func ValidateSquare(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return New(ErrCodeInvalidInput, "source image must be square (width == height), got %dx%d", b.Dx(), b.Dy())
	}
	if b.Dx() == 0 {
		return New(ErrCodeInvalidInput, "source image is empty")
	}
	return nil
}

// ValidateSize validates a single requested pixel size.
func ValidateSize(size int) error {
	if size <= 0 {
		return New(ErrCodeInvalidSize, "icon size must be positive, got %d", size)
	}
	if size > maxIconSize {
		return New(ErrCodeInvalidSize, "icon size %d exceeds maximum of %d", size, maxIconSize)
	}
	return nil
}

// ValidateSizes validates a custom size list from the --png flag.
// Duplicates are rejected because each size maps to exactly one output file.
func ValidateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return New(ErrCodeInvalidSize, "size list cannot be empty")
	}
	seen := make(map[int]bool, len(sizes))
	for _, s := range sizes {
		if err := ValidateSize(s); err != nil {
			return err
		}
		if seen[s] {
			return New(ErrCodeInvalidSize, "duplicate icon size %d", s)
		}
		seen[s] = true
	}
	return nil
}
