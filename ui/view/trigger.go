package view

import (
	"github.com/soocke/snapnote/domain/selection"
	"github.com/soocke/snapnote/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TriggerButton is the control that opens and closes the selection.
type TriggerButton struct {
	btn     *TButtonWidget
	onClick func()
}

var _ selection.Trigger = (*TriggerButton)(nil)

// NewTriggerButton creates the button; place it with Grid.
func NewTriggerButton(label string) *TriggerButton {
	t := &TriggerButton{}
	t.btn = TButton(Style(theme.StyleTriggerButton), Txt(label), Command(t.click))
	return t
}

// OnClick registers the click handler, replacing any previous one.
func (t *TriggerButton) OnClick(fn func()) { t.onClick = fn }

// Widget returns the underlying Tk button.
func (t *TriggerButton) Widget() *TButtonWidget { return t.btn }

func (t *TriggerButton) click() {
	if t.onClick != nil {
		t.onClick()
	}
}
