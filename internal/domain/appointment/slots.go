package appointment

// DailySlots is the fixed bookable slot table. Availability is always
// computed against this set, in this order.
var DailySlots = []string{
	"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00",
}

func IsValidSlot(slot string) bool {
	for _, s := range DailySlots {
		if s == slot {
			return true
		}
	}
	return false
}

// FreeSlots returns the daily slot table minus the occupied slots,
// preserving the table order.
func FreeSlots(occupied []string) []string {
	taken := make(map[string]bool, len(occupied))
	for _, s := range occupied {
		taken[s] = true
	}

	free := make([]string, 0, len(DailySlots))
	for _, s := range DailySlots {
		if !taken[s] {
			free = append(free, s)
		}
	}
	return free
}
