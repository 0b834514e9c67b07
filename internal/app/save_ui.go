package app

// runSaveAsPrompt asks for a target path and writes the active document
// there. The current path, if any, is offered as the initial input.
func (r *Runner) runSaveAsPrompt() {
	d := r.doc()
	ok := r.runPrompt("Save as: ", d.Path(), func(path string) error {
		r.Logger.Event("save.prompt.submit", map[string]any{"file": path})
		if err := d.SaveAs(path); err != nil {
			r.Logger.Event("save.prompt.error", map[string]any{"file": path, "error": err.Error()})
			return err
		}
		return nil
	})
	if ok {
		r.setMiniBuffer([]string{"Saved " + d.Path()})
	}
}
