package equipment

type Category string

const (
	CategoryComputer Category = "computer"
	CategoryServer   Category = "server"
	CategoryPrinter  Category = "printer"
	CategoryScanner  Category = "scanner"
	CategoryNetwork  Category = "network"
	CategoryLab      Category = "lab"
	CategoryRobot    Category = "robot"
	CategoryRoom     Category = "room"
	CategoryOther    Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryComputer, CategoryServer, CategoryPrinter, CategoryScanner,
		CategoryNetwork, CategoryLab, CategoryRobot, CategoryRoom, CategoryOther:
		return true
	default:
		return false
	}
}

// State is the availability "etat" of an equipment item.
type State string

const (
	StateFree          State = "libre"
	StateReserved      State = "reserve"
	StateInMaintenance State = "en_maintenance"
	StateOutOfService  State = "hors_service"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateFree, StateReserved, StateInMaintenance, StateOutOfService:
		return true
	default:
		return false
	}
}

// IsStorable excludes Reserved, which only ever comes out of the projection.
func (s State) IsStorable() bool {
	return s.IsValid() && s != StateReserved
}

// Blocks reports an administrative state that overrides reservation occupancy.
func (s State) Blocks() bool {
	return s == StateInMaintenance || s == StateOutOfService
}
