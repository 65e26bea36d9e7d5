package content

// KidneyPage is the singleton document behind the kidney department page.
type KidneyPage struct {
	Hero       KidneyHero     `json:"hero"`
	Stats      []KidneyStat   `json:"stats"`
	Procedures ProcedureBlock `json:"procedures"`
	Journey    JourneyBlock   `json:"journey"`
	Symptoms   SymptomBlock   `json:"symptoms"`
	Support    SupportBlock   `json:"support"`
	CTA        CallToAction   `json:"cta"`
}

type KidneyHero struct {
	Badge           string `json:"badge"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"backgroundImage"`
}

type KidneyStat struct {
	Icon        string `json:"icon"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ProcedureBlock struct {
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Footnote string          `json:"footnote"`
	Items    []ProcedureItem `json:"items"`
}

type ProcedureItem struct {
	Icon        string   `json:"icon"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	FocusPoints []string `json:"focusPoints"`
}

type JourneyBlock struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Note     string      `json:"note"`
	Steps    []TitleDesc `json:"steps"`
}

type TitleDesc struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SymptomBlock struct {
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle"`
	Categories []SymptomCategory `json:"categories"`
	CTA        LinkCTA           `json:"cta"`
}

type SymptomCategory struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type LinkCTA struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type SupportBlock struct {
	Title     string            `json:"title"`
	Pillars   []SupportPillar   `json:"pillars"`
	Resources []SupportResource `json:"resources"`
}

type SupportPillar struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SupportResource struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type CallToAction struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
}

// SanitizeKidney canonicalizes a raw body into a KidneyPage. Every scalar is
// coerced to a string, every list keeps only rows with at least one non-empty
// field, and unknown keys are ignored. Running it twice is a no-op.
func SanitizeKidney(body map[string]any) KidneyPage {
	if body == nil {
		body = map[string]any{}
	}

	page := KidneyPage{
		Hero: KidneyHero{
			Badge:           str(obj(body, "hero")["badge"]),
			Title:           str(obj(body, "hero")["title"]),
			Subtitle:        str(obj(body, "hero")["subtitle"]),
			BackgroundImage: str(obj(body, "hero")["backgroundImage"]),
		},
		Stats: make([]KidneyStat, 0),
	}

	for _, raw := range list(body, "stats") {
		item, _ := raw.(map[string]any)
		stat := KidneyStat{
			Icon:        str(item["icon"]),
			Value:       str(item["value"]),
			Label:       str(item["label"]),
			Description: str(item["description"]),
		}
		if anyNonBlank(stat.Icon, stat.Value, stat.Label, stat.Description) {
			page.Stats = append(page.Stats, stat)
		}
	}

	procedures := obj(body, "procedures")
	page.Procedures = ProcedureBlock{
		Title:    str(procedures["title"]),
		Subtitle: str(procedures["subtitle"]),
		Footnote: str(procedures["footnote"]),
		Items:    make([]ProcedureItem, 0),
	}
	for _, raw := range list(procedures, "items") {
		item, _ := raw.(map[string]any)
		procedure := ProcedureItem{
			Icon:        str(item["icon"]),
			Name:        str(item["name"]),
			Description: str(item["description"]),
			FocusPoints: stringList(item["focusPoints"]),
		}
		if anyNonBlank(procedure.Icon, procedure.Name, procedure.Description) || len(procedure.FocusPoints) > 0 {
			page.Procedures.Items = append(page.Procedures.Items, procedure)
		}
	}

	journey := obj(body, "journey")
	page.Journey = JourneyBlock{
		Title:    str(journey["title"]),
		Subtitle: str(journey["subtitle"]),
		Note:     str(journey["note"]),
		Steps:    make([]TitleDesc, 0),
	}
	for _, raw := range list(journey, "steps") {
		item, _ := raw.(map[string]any)
		step := TitleDesc{Title: str(item["title"]), Description: str(item["description"])}
		if anyNonBlank(step.Title, step.Description) {
			page.Journey.Steps = append(page.Journey.Steps, step)
		}
	}

	symptoms := obj(body, "symptoms")
	page.Symptoms = SymptomBlock{
		Title:      str(symptoms["title"]),
		Subtitle:   str(symptoms["subtitle"]),
		Categories: make([]SymptomCategory, 0),
		CTA: LinkCTA{
			Text: str(obj(symptoms, "cta")["text"]),
			Link: str(obj(symptoms, "cta")["link"]),
		},
	}
	for _, raw := range list(symptoms, "categories") {
		item, _ := raw.(map[string]any)
		category := SymptomCategory{
			Title: str(item["title"]),
			Items: stringList(item["items"]),
		}
		if anyNonBlank(category.Title) || len(category.Items) > 0 {
			page.Symptoms.Categories = append(page.Symptoms.Categories, category)
		}
	}

	support := obj(body, "support")
	page.Support = SupportBlock{
		Title:     str(support["title"]),
		Pillars:   make([]SupportPillar, 0),
		Resources: make([]SupportResource, 0),
	}
	for _, raw := range list(support, "pillars") {
		item, _ := raw.(map[string]any)
		pillar := SupportPillar{
			Icon:        str(item["icon"]),
			Title:       str(item["title"]),
			Description: str(item["description"]),
		}
		if anyNonBlank(pillar.Icon, pillar.Title, pillar.Description) {
			page.Support.Pillars = append(page.Support.Pillars, pillar)
		}
	}
	for _, raw := range list(support, "resources") {
		item, _ := raw.(map[string]any)
		resource := SupportResource{
			Title:       str(item["title"]),
			Link:        str(item["link"]),
			Description: str(item["description"]),
		}
		if anyNonBlank(resource.Title, resource.Link, resource.Description) {
			page.Support.Resources = append(page.Support.Resources, resource)
		}
	}

	page.CTA = sanitizeCTA(obj(body, "cta"))
	return page
}

func sanitizeCTA(m map[string]any) CallToAction {
	return CallToAction{
		Heading:     str(m["heading"]),
		Description: str(m["description"]),
		ButtonText:  str(m["buttonText"]),
		ButtonLink:  str(m["buttonLink"]),
	}
}
