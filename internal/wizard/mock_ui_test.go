package wizard

// MockUI scripts prompt responses through injectable funcs keyed by prompt
// title. Nil funcs accept the defaults.
type MockUI struct {
	SelectFunc  func(title string, options []string, current *string) error
	ConfirmFunc func(title string, value *bool) error
	InputFunc   func(title string, value *string) error
	NoteFunc    func(title, body string) error
}

func (m *MockUI) Select(title string, options []string, current *string) error {
	if m.SelectFunc == nil {
		return nil
	}
	return m.SelectFunc(title, options, current)
}

func (m *MockUI) Confirm(title string, value *bool) error {
	if m.ConfirmFunc == nil {
		return nil
	}
	return m.ConfirmFunc(title, value)
}

func (m *MockUI) Input(title string, value *string) error {
	if m.InputFunc == nil {
		return nil
	}
	return m.InputFunc(title, value)
}

func (m *MockUI) Note(title, body string) error {
	if m.NoteFunc == nil {
		return nil
	}
	return m.NoteFunc(title, body)
}
