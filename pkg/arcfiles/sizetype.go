package arcfiles

// SizeType is an ordinal tier label derived from a byte size. It is a
// display value only, recomputed on demand and never stored.
type SizeType string

const (
	SizeXXS  SizeType = "XXS"
	SizeXS   SizeType = "XS"
	SizeS    SizeType = "S"
	SizeM    SizeType = "M"
	SizeL    SizeType = "L"
	SizeXL   SizeType = "XL"
	SizeXXL  SizeType = "XXL"
	SizeXXXL SizeType = "XXXL"
)

// TierOf maps a byte count to its size tier. Thresholds are exclusive
// upper bounds in megabytes, compared on the raw floating-point value,
// so exactly 20 MiB is XS, not XXS.
func TierOf(size int64) SizeType {
	mb := float64(size) / 1024 / 1024
	switch {
	case mb < 20:
		return SizeXXS
	case mb < 50:
		return SizeXS
	case mb < 100:
		return SizeS
	case mb < 175:
		return SizeM
	case mb < 300:
		return SizeL
	case mb < 500:
		return SizeXL
	case mb < 800:
		return SizeXXL
	}
	return SizeXXXL
}
