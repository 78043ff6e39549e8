package pkg

// enum of container_type
type ContainerType uint8

const (
	RESIDUAL ContainerType = iota
	ORGANIC
	PAPER
	GLASS
	PLASTIC
	BULKY
	HAZARDOUS
	UNKNOWN
)

const (
	INF_WEIGHT float64 = 1e15

	EPS = 1e-9
)

const (
	DEBUG = false
)

// enum for waste stream tags used in collection-point survey files
func GetContainerType(stream string) ContainerType {
	switch stream {
	case "residual":
		return RESIDUAL
	case "organic":
		return ORGANIC
	case "paper":
		return PAPER
	case "glass":
		return GLASS
	case "plastic":
		return PLASTIC
	case "bulky":
		return BULKY
	case "hazardous":
		return HAZARDOUS
	default:
		return UNKNOWN
	}
}

func (c ContainerType) String() string {
	switch c {
	case RESIDUAL:
		return "residual"
	case ORGANIC:
		return "organic"
	case PAPER:
		return "paper"
	case GLASS:
		return "glass"
	case PLASTIC:
		return "plastic"
	case BULKY:
		return "bulky"
	case HAZARDOUS:
		return "hazardous"
	default:
		return "unknown"
	}
}
