package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

var linterOptions = []Option{
	{Title: "none", Description: "skip this step"},
	{Title: "ruff", Description: "ruff check ."},
	{Title: "eslint", Description: "eslint ."},
}

func TestSelectModel_EnterSelectsCurrent(t *testing.T) {
	t.Parallel()

	m := newSelectModel("Linter", linterOptions, 0)
	updated, cmd := m.Update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("enter should quit")
	}

	res := updated.(selectModel).result
	if res.Cancelled {
		t.Fatal("enter should not cancel")
	}
	if res.Index != 0 || res.Value != "none" {
		t.Errorf("result = %+v, want first option", res)
	}
}

func TestSelectModel_InitialCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial int
		want    string
	}{
		{"configured tool", 2, "eslint"},
		{"out of range", 7, "none"},
		{"negative", -1, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newSelectModel("Linter", linterOptions, tt.initial)
			updated, _ := m.Update(keyPress("enter"))
			if got := updated.(selectModel).result.Value; got != tt.want {
				t.Errorf("Value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectModel_NavigateThenEnter(t *testing.T) {
	t.Parallel()

	var model tea.Model = newSelectModel("Linter", linterOptions, 0)
	model, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	model, _ = model.Update(keyPress("enter"))

	res := model.(selectModel).result
	if res.Value != "ruff" || res.Index != 1 {
		t.Errorf("result = %+v, want ruff at index 1", res)
	}
}

func TestSelectModel_Cancel(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"esc", "ctrl+c", "q"} {
		t.Run(key, func(t *testing.T) {
			t.Parallel()
			m := newSelectModel("Linter", linterOptions, 1)
			updated, cmd := m.Update(keyPress(key))
			if cmd == nil {
				t.Error("cancel should quit")
			}
			res := updated.(selectModel).result
			if !res.Cancelled || res.Index != -1 {
				t.Errorf("%s: result = %+v, want cancelled", key, res)
			}
		})
	}
}

func TestSelectModel_ViewDone(t *testing.T) {
	t.Parallel()

	m := newSelectModel("Linter", linterOptions, 0)
	if m.View().Content == "" {
		t.Error("View().Content should not be empty before selection")
	}
	m.done = true
	if m.View().Content != "" {
		t.Error("View().Content should be empty once done")
	}
}

func TestSelect_NoOptions(t *testing.T) {
	t.Parallel()

	res, err := Select("Linter", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Cancelled {
		t.Error("Select with no options should report cancelled")
	}
}
