package guard

// Route is a static screen descriptor. The table is immutable at runtime;
// Meta carries each route's effective requirements (children of the main
// layout inherit the auth requirement).
type Route struct {
	Path string
	Name string
	Meta Meta
}

// Routes mirrors the application's screens. The three entry screens are
// public; everything else sits behind authentication, with the curation
// screens additionally restricted to admins.
var Routes = []Route{
	{Path: "/login", Name: "Login"},
	{Path: "/setup", Name: "Setup"},
	{Path: "/register", Name: "Register"},

	{Path: "/", Name: "Home", Meta: Meta{RequiresAuth: true}},
	{Path: "/discover", Name: "Discover", Meta: Meta{RequiresAuth: true}},
	{Path: "/tips", Name: "Tips", Meta: Meta{RequiresAuth: true}},
	{Path: "/tips/write", Name: "TipsWrite", Meta: Meta{RequiresAuth: true, RequiresAdmin: true}},
	{Path: "/tips/edit/:id", Name: "TipsEdit", Meta: Meta{RequiresAuth: true, RequiresAdmin: true}},
	{Path: "/tips/:id", Name: "TipsDetail", Meta: Meta{RequiresAuth: true}},
	{Path: "/product/:id", Name: "ProductDetail", Meta: Meta{RequiresAuth: true}},
	{Path: "/settings", Name: "Settings", Meta: Meta{RequiresAuth: true}},
	{Path: "/admin", Name: "Admin", Meta: Meta{RequiresAuth: true, RequiresAdmin: true}},
	{Path: "/favorites", Name: "Favorites", Meta: Meta{RequiresAuth: true}},
	{Path: "/scraps", Name: "Scraps", Meta: Meta{RequiresAuth: true}},
	{Path: "/change-password", Name: "ChangePassword", Meta: Meta{RequiresAuth: true}},
	{Path: "/filing-rules", Name: "FilingRules", Meta: Meta{RequiresAuth: true}},
	{Path: "/filename-violations", Name: "FilenameViolations", Meta: Meta{RequiresAuth: true, RequiresAdmin: true}},
}

// Find returns the route registered under name, or nil.
func Find(name string) *Route {
	for i := range Routes {
		if Routes[i].Name == name {
			return &Routes[i]
		}
	}
	return nil
}
