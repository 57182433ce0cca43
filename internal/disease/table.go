package disease

const (
	unknownDescription = "Information about this disease is not available in our database."
	unknownTreatment   = "Consult with an agricultural expert for proper treatment options."
)

// keys keeps the table in display order.
var keys = []string{
	"Bacterial Leaf Blight",
	"Brown Spot",
	"Healthy Rice Leaf",
	"Leaf Blast",
	"Leaf Scald",
	"Narrow Brown Leaf Spot",
	"Rice Hispa",
	"Sheath Blight",
	"Healthy",
}

var table = map[string]Info{
	"Bacterial Leaf Blight": {
		Name:        "Bacterial Leaf Blight",
		Description: "A serious bacterial disease that causes wilting of seedlings and yellowing and drying of leaves.",
		Treatment:   "Use resistant varieties, practice field sanitation, and apply copper-based bactericides.",
		Severity:    SeverityHigh,
	},
	"Brown Spot": {
		Name:        "Brown Spot",
		Description: "Fungal disease causing brown lesions with gray centers on leaves, reducing photosynthesis.",
		Treatment:   "Apply fungicides, ensure proper nutrition, and practice crop rotation.",
		Severity:    SeverityMedium,
	},
	"Healthy Rice Leaf": {
		Name:        "Healthy Rice Leaf",
		Description: "No disease detected. The rice plant appears to be in good health.",
		Treatment:   "Continue regular maintenance and monitoring.",
		Severity:    SeverityLow,
	},
	"Leaf Blast": {
		Name:        "Leaf Blast",
		Description: "Fungal disease causing diamond-shaped lesions on leaves that can lead to complete drying.",
		Treatment:   "Use resistant varieties, apply fungicides, and maintain proper water management.",
		Severity:    SeverityHigh,
	},
	"Leaf Scald": {
		Name:        "Leaf Scald",
		Description: "Fungal disease with characteristic scald-like lesions on leaf tips that progress down the leaf blade.",
		Treatment:   "Plant resistant varieties, apply fungicides, and practice good field drainage.",
		Severity:    SeverityMedium,
	},
	"Narrow Brown Leaf Spot": {
		Name:        "Narrow Brown Leaf Spot",
		Description: "Fungal disease characterized by narrow, brown lesions parallel to leaf veins.",
		Treatment:   "Use fungicides, practice crop rotation, and maintain balanced fertilization.",
		Severity:    SeverityMedium,
	},
	"Rice Hispa": {
		Name:        "Rice Hispa",
		Description: "Insect pest that causes whitish streaks on leaves as larvae mine inside leaf tissue.",
		Treatment:   "Apply appropriate insecticides, remove weeds around rice fields, and avoid over-fertilization with nitrogen.",
		Severity:    SeverityMedium,
	},
	"Sheath Blight": {
		Name:        "Sheath Blight",
		Description: "Fungal disease that initially affects the leaf sheaths near the water line, forming oval lesions that expand upward.",
		Treatment:   "Use resistant varieties, avoid excessive nitrogen, and apply fungicides during early infection stages.",
		Severity:    SeverityHigh,
	},
	"Healthy": {
		Name:        "Healthy",
		Description: "No disease detected. The rice plant appears to be in good health.",
		Treatment:   "Continue regular maintenance and monitoring.",
		Severity:    SeverityLow,
	},
}

// rules are evaluated in order; the first hit wins. "narrow brown" must come
// before "brown spot" so Narrow Brown Leaf Spot is not reported as Brown Spot.
var rules = []rule{
	{exact: true, contains: "healthy rice leaf", key: "Healthy Rice Leaf"},
	{contains: "leaf scald", key: "Leaf Scald"},
	{contains: "narrow brown", key: "Narrow Brown Leaf Spot"},
	{contains: "rice hispa", key: "Rice Hispa"},
	{contains: "sheath blight", key: "Sheath Blight"},
	{contains: "brown spot", key: "Brown Spot"},
	{contains: "leaf blast", key: "Leaf Blast"},
	{contains: "bacterial", key: "Bacterial Leaf Blight"},
	{exact: true, contains: "healthy", key: "Healthy"},
}
