package app

// runOpenPrompt prompts for a file path and opens it as a new document.
// Esc cancels; Enter attempts to load. On error, shows a brief message and remains in the prompt.
func (r *Runner) runOpenPrompt() {
	r.runPrompt("Open: ", "", func(path string) error {
		r.Logger.Event("open.prompt.submit", map[string]any{"file": path})
		if err := r.LoadFile(path); err != nil {
			r.Logger.Event("open.prompt.error", map[string]any{"file": path, "error": err.Error()})
			return err
		}
		r.Logger.Event("open.prompt.success", map[string]any{"file": path})
		return nil
	})
}
