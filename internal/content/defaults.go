package content

// Built-in page content. These are the last tier of the fallback chain: when
// neither the store nor the on-disk snapshots have a document for a page, the
// site still renders something sensible.

func DefaultHome() HomePage {
	return HomePage{
		Hero: HomeHero{
			Title:            "World-Class Kidney Care",
			Subtitle:         "Comprehensive nephrology and transplant services under one roof.",
			CTAPrimaryText:   "Book Appointment",
			CTAPrimaryLink:   "/appointment",
			CTASecondaryText: "Our Services",
			CTASecondaryLink: "/services",
		},
		Features: HomeFeatures{
			Title:    "Why Choose Us",
			Subtitle: "Care built around the patient",
			Items: []FeatureItem{
				{Badge: "01", Title: "Expert Team", Text: "Board-certified nephrologists and transplant surgeons."},
				{Badge: "02", Title: "Modern Facility", Text: "Advanced dialysis units and operating theatres."},
				{Badge: "03", Title: "Complete Care", Text: "From diagnosis to post-transplant follow-up."},
			},
		},
		Transplant: TransplantHighlights{
			Badge:            "Transplant Program",
			Heading:          "A Proven Transplant Program",
			Description:      "Decades of combined experience in living-donor and deceased-donor kidney transplantation.",
			Stats:            []StatPair{{Value: "500+", Label: "Transplants"}, {Value: "98%", Label: "Success Rate"}},
			CareJourneyTitle: "Your Care Journey",
			CareJourneyItems: []string{"Evaluation", "Matching", "Surgery", "Recovery"},
			Features:         []TitleDesc{{Title: "Living Donor Program", Description: "Dedicated coordination for donor and recipient."}},
		},
		Facility: FacilitySection{
			Badge:       "Our Facility",
			Heading:     "Built for Recovery",
			Description: "Private rooms, dedicated dialysis wing and round-the-clock nursing.",
		},
		CTA: CallToAction{
			Heading:     "Ready to take the next step?",
			Description: "Our coordinators will guide you through every stage.",
			ButtonText:  "Contact Us",
			ButtonLink:  "/contact",
		},
		Showcase: Showcase{Title: "Our Doctors", Subtitle: "Meet the team"},
	}
}

func DefaultTourism() TourismPage {
	return TourismPage{
		HealthGateways: HealthGateways{
			Badge:       "Medical Tourism",
			Title:       "Care Without Borders",
			Description: "End-to-end support for international patients.",
			Services: []IconCard{
				{Icon: "plane", Title: "Travel Assistance", Description: "Visa letters, airport pickup and accommodation."},
				{Icon: "language", Title: "Interpreters", Description: "Multilingual coordinators throughout your stay."},
				{Icon: "file", Title: "Records Review", Description: "Remote evaluation before you travel."},
			},
			Contact: ContactCard{
				Heading: "International Desk",
				Email:   "international@kidneyclinic.example",
				Phone:   "+971 4 000 0000",
			},
		},
		Process: ProcessSection{
			Title: "How It Works",
			Steps: []TitleDesc{
				{Title: "Share Your Records", Description: "Send reports for a remote opinion."},
				{Title: "Plan Your Visit", Description: "We arrange travel, stay and schedule."},
				{Title: "Receive Treatment", Description: "Care from arrival to discharge."},
				{Title: "Follow Up Remotely", Description: "Telemedicine reviews after you return home."},
			},
		},
		CTA: CallToAction{
			Heading:     "Start Your Journey",
			Description: "Talk to our international patient desk today.",
			ButtonText:  "Get in Touch",
			ButtonLink:  "/contact",
		},
		Map: MapSection{
			Title:       "Patients From Around the World",
			Description: "We welcome patients from across the region and beyond.",
			Locations:   []MapLocation{},
		},
	}
}

func DefaultKidney() KidneyPage {
	return KidneyPage{
		Hero: KidneyHero{
			Badge:    "Department of Nephrology",
			Title:    "Kidney Care Centre",
			Subtitle: "Specialised diagnosis and treatment for every stage of kidney disease.",
		},
		Stats: []KidneyStat{
			{Icon: "award", Value: "25+", Label: "Years of Experience"},
			{Icon: "users", Value: "10,000+", Label: "Patients Treated"},
			{Icon: "heart", Value: "500+", Label: "Transplants Performed"},
		},
		Procedures: ProcedureBlock{
			Title:    "Treatments & Procedures",
			Subtitle: "From early intervention to transplantation",
			Items: []ProcedureItem{
				{Icon: "droplet", Name: "Dialysis", Description: "Haemodialysis and peritoneal dialysis programmes.", FocusPoints: []string{"In-centre and home options", "Dedicated dialysis wing"}},
				{Icon: "scalpel", Name: "Kidney Transplant", Description: "Living-donor and deceased-donor transplantation.", FocusPoints: []string{"Donor evaluation", "Lifelong follow-up"}},
				{Icon: "stone", Name: "Stone Management", Description: "Minimally invasive removal of kidney stones.", FocusPoints: []string{"Laser lithotripsy", "Same-day discharge"}},
			},
		},
		Journey: JourneyBlock{
			Title:    "Your Treatment Journey",
			Subtitle: "What to expect",
			Steps: []TitleDesc{
				{Title: "Consultation", Description: "Review of history, symptoms and prior reports."},
				{Title: "Diagnosis", Description: "Laboratory and imaging workup."},
				{Title: "Treatment", Description: "A plan tailored to your condition."},
				{Title: "Follow-Up", Description: "Ongoing monitoring of kidney function."},
			},
		},
		Symptoms: SymptomBlock{
			Title:    "When to See a Specialist",
			Subtitle: "Kidney disease is often silent until late",
			Categories: []SymptomCategory{
				{Title: "Early Signs", Items: []string{"Swelling of ankles or face", "Foamy urine", "Persistent fatigue"}},
				{Title: "Risk Factors", Items: []string{"Diabetes", "High blood pressure", "Family history of kidney disease"}},
			},
			CTA: LinkCTA{Text: "Book a Screening", Link: "/appointment"},
		},
		Support: SupportBlock{
			Title: "Support Beyond Treatment",
			Pillars: []SupportPillar{
				{Icon: "apple", Title: "Renal Nutrition", Description: "Dietitian-led plans for every stage."},
				{Icon: "chat", Title: "Counselling", Description: "Support for patients and families."},
			},
			Resources: []SupportResource{
				{Title: "Living With CKD", Link: "/resources/ckd", Description: "A practical guide for newly diagnosed patients."},
			},
		},
		CTA: CallToAction{
			Heading:     "Concerned About Your Kidneys?",
			Description: "Early consultation makes all the difference.",
			ButtonText:  "Book Appointment",
			ButtonLink:  "/appointment",
		},
	}
}

// DefaultPage returns the built-in document for a page as a generic map.
func DefaultPage(page string) map[string]any {
	switch page {
	case PageHome:
		return DocMap(DefaultHome())
	case PageTourism:
		return DocMap(DefaultTourism())
	case PageKidney:
		return DocMap(DefaultKidney())
	default:
		return map[string]any{}
	}
}
