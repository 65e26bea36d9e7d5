package content

// TourismPage is the singleton document behind the medical tourism page.
type TourismPage struct {
	HealthGateways HealthGateways `json:"healthGateways"`
	Process        ProcessSection `json:"process"`
	CTA            CallToAction   `json:"cta"`
	Map            MapSection     `json:"map"`
}

type HealthGateways struct {
	Badge       string      `json:"badge"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Services    []IconCard  `json:"services"`
	Contact     ContactCard `json:"contact"`
}

type IconCard struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactCard struct {
	Heading string `json:"heading"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

type ProcessSection struct {
	Title string      `json:"title"`
	Steps []TitleDesc `json:"steps"`
}

type MapSection struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Locations   []MapLocation `json:"locations"`
}

// MapLocation coordinates are optional: a missing or non-numeric input stays
// absent rather than asserting 0,0.
type MapLocation struct {
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Stat        string   `json:"stat"`
	StatLabel   string   `json:"statLabel"`
}

// SanitizeTourism canonicalizes a raw body into a TourismPage.
func SanitizeTourism(body map[string]any) TourismPage {
	if body == nil {
		body = map[string]any{}
	}

	gateways := obj(body, "healthGateways")
	contact := obj(gateways, "contact")
	page := TourismPage{
		HealthGateways: HealthGateways{
			Badge:       str(gateways["badge"]),
			Title:       str(gateways["title"]),
			Description: str(gateways["description"]),
			Services:    make([]IconCard, 0),
			Contact: ContactCard{
				Heading: str(contact["heading"]),
				Email:   str(contact["email"]),
				Phone:   str(contact["phone"]),
				Website: str(contact["website"]),
			},
		},
	}
	for _, raw := range list(gateways, "services") {
		item, _ := raw.(map[string]any)
		card := IconCard{
			Icon:        str(item["icon"]),
			Title:       str(item["title"]),
			Description: str(item["description"]),
		}
		if anyNonBlank(card.Icon, card.Title, card.Description) {
			page.HealthGateways.Services = append(page.HealthGateways.Services, card)
		}
	}

	process := obj(body, "process")
	page.Process = ProcessSection{
		Title: str(process["title"]),
		Steps: make([]TitleDesc, 0),
	}
	for _, raw := range list(process, "steps") {
		item, _ := raw.(map[string]any)
		step := TitleDesc{Title: str(item["title"]), Description: str(item["description"])}
		if anyNonBlank(step.Title, step.Description) {
			page.Process.Steps = append(page.Process.Steps, step)
		}
	}

	page.CTA = sanitizeCTA(obj(body, "cta"))

	mapSection := obj(body, "map")
	page.Map = MapSection{
		Title:       str(mapSection["title"]),
		Description: str(mapSection["description"]),
		Locations:   make([]MapLocation, 0),
	}
	for _, raw := range list(mapSection, "locations") {
		item, _ := raw.(map[string]any)
		location := MapLocation{
			Name:        str(item["name"]),
			Icon:        str(item["icon"]),
			Description: str(item["description"]),
			Lat:         number(item["lat"]),
			Lng:         number(item["lng"]),
			Stat:        str(item["stat"]),
			StatLabel:   str(item["statLabel"]),
		}
		if anyNonBlank(location.Name, location.Icon, location.Description, location.Stat, location.StatLabel) ||
			location.Lat != nil || location.Lng != nil {
			page.Map.Locations = append(page.Map.Locations, location)
		}
	}
	return page
}
