package authorization

// Policy is the single role -> resource -> actions capability table. The
// server consults it through Authorize and the client fetches the same table
// from /api/auth/policy, so permission logic is defined exactly once.
var Policy = map[string]map[string][]string{
	"admin": {
		"patients":     {"view", "create", "update", "delete"},
		"staff":        {"view", "create", "update"},
		"appointments": {"view", "create", "update"},
		"billing":      {"view", "create", "update"},
		"inventory":    {"view", "create", "update", "delete"},
		"insurance":    {"view", "create"},
		"dashboard":    {"view"},
	},
	"doctor": {
		"patients":     {"view", "update"},
		"staff":        {"view"},
		"appointments": {"view", "create", "update"},
		"billing":      {"view"},
		"inventory":    {"view"},
		"insurance":    {"view"},
		"dashboard":    {"view"},
	},
	"nurse": {
		"patients":     {"view", "update"},
		"staff":        {"view"},
		"appointments": {"view", "update"},
		"inventory":    {"view", "update"},
		"dashboard":    {"view"},
	},
	"receptionist": {
		"patients":     {"view", "create", "update"},
		"staff":        {"view"},
		"appointments": {"view", "create", "update"},
		"billing":      {"view", "create"},
		"insurance":    {"view", "create"},
		"dashboard":    {"view"},
	},
	"billing": {
		"patients":     {"view"},
		"appointments": {"view"},
		"billing":      {"view", "create", "update"},
		"insurance":    {"view", "create"},
		"dashboard":    {"view"},
	},
	"pharmacist": {
		"inventory": {"view", "create", "update", "delete"},
		"dashboard": {"view"},
	},
}

func Can(role, resource, action string) bool {
	actions, ok := Policy[role][resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
