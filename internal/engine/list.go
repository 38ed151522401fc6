package engine

import "context"

// List returns the visible and hidden folder lists for the descriptor in
// scope. It never modifies the file; the CLI and any picker UI render from
// this.
func (e *Engine) List(ctx context.Context, req *ListRequest) (*ListResult, error) {
	location, err := e.Locate(req.Location, req.CWD)
	if err != nil {
		return nil, err
	}

	d, _, err := e.readDescriptor(location)
	if err != nil {
		return nil, err
	}

	visible, hidden, err := d.Visibility(e.cfg.SettingsKey)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Location: location,
		Visible:  visible,
		Hidden:   hidden,
	}, nil
}
