package domain

// GeneratorOptions are the two process-wide toggles the client generator
// reads from JVM system properties. Zero values mean "use the generator's
// defaults".
type GeneratorOptions struct {
	// GenerateDataTemplates makes the generator emit data template classes
	// alongside the request builders.
	GenerateDataTemplates bool
	// DefaultPackage is the Java package used for types that carry no
	// namespace of their own.
	DefaultPackage string
}

// GenerationRequest describes one invocation of the external client
// generator.
type GenerationRequest struct {
	// ResolverPath is the colon-separated search path for schema
	// dependencies referenced by the input specs.
	ResolverPath string
	// Version is the Rest.li protocol version tag passed to the generator.
	Version string
	// OutputDir is the directory the generator writes Java sources into.
	OutputDir string
	// InputFiles are absolute paths of the restspec and snapshot files to
	// generate from.
	InputFiles []string
	// Options override the generator's process-wide defaults for the
	// duration of this call.
	Options GeneratorOptions
}

// GenerationResult is what the external generator reports after a run: the
// files it modified and the files it targeted. Their union is the complete
// set of outputs the run claims to own.
type GenerationResult struct {
	ModifiedFiles []string `json:"modifiedFiles"`
	TargetFiles   []string `json:"targetFiles"`
}

// GeneratedFiles returns the union of modified and target files with
// duplicates removed. Order is unspecified.
func (r GenerationResult) GeneratedFiles() []string {
	seen := make(map[string]struct{}, len(r.ModifiedFiles)+len(r.TargetFiles))
	files := make([]string, 0, len(r.ModifiedFiles)+len(r.TargetFiles))
	for _, list := range [][]string{r.ModifiedFiles, r.TargetFiles} {
		for _, f := range list {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	return files
}
