package catalog

// Kind selects the 3D representation drawn for a product.
type Kind int

const (
	KindGeneric Kind = iota
	KindPhone
	KindLaptop
	KindEarbuds
	KindTablet
	KindWatch
	KindDesktop
	KindMonitor
	KindTower
)

var kindByID = map[string]Kind{
	"iphone-15-pro":     KindPhone,
	"macbook-pro-16":    KindLaptop,
	"airpods-pro":       KindEarbuds,
	"ipad-pro":          KindTablet,
	"apple-watch-ultra": KindWatch,
	"mac-studio":        KindDesktop,
	"studio-display":    KindMonitor,
	"mac-pro":           KindTower,
}

// ModelKind maps a product id to its representation. Unknown ids get
// the generic display.
func ModelKind(id string) Kind {
	if k, ok := kindByID[id]; ok {
		return k
	}
	return KindGeneric
}

// Known reports whether id has a dedicated representation.
func Known(id string) bool {
	_, ok := kindByID[id]
	return ok
}

func (k Kind) String() string {
	switch k {
	case KindPhone:
		return "phone"
	case KindLaptop:
		return "laptop"
	case KindEarbuds:
		return "earbuds"
	case KindTablet:
		return "tablet"
	case KindWatch:
		return "watch"
	case KindDesktop:
		return "desktop"
	case KindMonitor:
		return "monitor"
	case KindTower:
		return "tower"
	default:
		return "generic"
	}
}
