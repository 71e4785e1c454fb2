package render

// Material is a rendering asset referenced by RenderData. Materials are
// owned by the asset system: the geometry core compares them by identity
// only and never frees them.
type Material struct {
	Name    string
	Texture uint32 // GL texture name, 0 for untextured
}
