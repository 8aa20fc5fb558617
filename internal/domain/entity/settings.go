package entity

// DefaultCEOImage is the compiled-in fallback for the about-page portrait.
const DefaultCEOImage = "Kassahun.jpg"

// Settings is a single keyless record. Updates are a shallow merge of new
// fields over the stored ones, so it is carried as a loose map between the
// store and the HTTP layer; CeoImage is the only field the core relies on.
type Settings map[string]any

// DefaultSettings returns the record served when storage is empty or corrupt.
func DefaultSettings() Settings {
	return Settings{"ceoImage": DefaultCEOImage}
}

// CEOImage returns the configured portrait path, or the default.
func (s Settings) CEOImage() string {
	if v, ok := s["ceoImage"].(string); ok && v != "" {
		return v
	}
	return DefaultCEOImage
}

// Merged returns a copy of s with the fields of partial overlaid.
func (s Settings) Merged(partial map[string]any) Settings {
	out := make(Settings, len(s)+len(partial))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}
