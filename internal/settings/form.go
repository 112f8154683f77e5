// Package settings is the options form over the live camera configuration.
package settings

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/mgnsk/orthocam/internal/config"
	"github.com/mgnsk/orthocam/internal/store"
)

// Kind is a field's value type.
type Kind int

// Field kinds.
const (
	Bool Kind = iota
	Float
)

// Field is one editable option. Writes go through the camera setters, so bounds and dirty tracking hold.
type Field struct {
	// Name is the document key of the option.
	Name string
	Kind Kind
	// Step is the amount one adjustment moves a float option.
	Step float32

	getBool  func(*config.Camera) bool
	setBool  func(*config.Camera, config.View, bool)
	getFloat func(*config.Camera) float32
	setFloat func(*config.Camera, float32)
}

// TranslationKey returns the option label's translation key.
func (f Field) TranslationKey() string {
	return "orthocamera.config." + f.Name
}

// Bool returns a bool option's value.
func (f Field) Bool(cam *config.Camera) bool {
	if f.getBool == nil {
		return false
	}
	return f.getBool(cam)
}

// SetBool writes a bool option.
func (f Field) SetBool(cam *config.Camera, view config.View, v bool) {
	if f.setBool != nil {
		f.setBool(cam, view, v)
	}
}

// Float returns a float option's value.
func (f Field) Float(cam *config.Camera) float32 {
	if f.getFloat == nil {
		return 0
	}
	return f.getFloat(cam)
}

// SetFloat writes a float option.
func (f Field) SetFloat(cam *config.Camera, v float32) {
	if f.setFloat != nil {
		f.setFloat(cam, v)
	}
}

// Format renders the option's value.
func (f Field) Format(cam *config.Camera) string {
	if f.Kind == Bool {
		if f.Bool(cam) {
			return "ON"
		}
		return "OFF"
	}
	return fmt.Sprintf("%.2f", f.Float(cam))
}

func boolField(name string, get func(*config.Camera) bool, set func(*config.Camera, config.View, bool)) Field {
	return Field{Name: name, Kind: Bool, getBool: get, setBool: set}
}

func floatField(name string, step float32, get func(*config.Camera) float32, set func(*config.Camera, float32)) Field {
	return Field{Name: name, Kind: Float, Step: step, getFloat: get, setFloat: set}
}

// Fields lists the options in display order.
func Fields() []Field {
	return []Field{
		boolField("enabled", (*config.Camera).Enabled, func(c *config.Camera, view config.View, v bool) {
			if c.Enabled() != v {
				c.Toggle(view)
			}
		}),
		boolField("save_enabled_state", (*config.Camera).PersistEnabledState, func(c *config.Camera, _ config.View, v bool) {
			c.SetPersistEnabledState(v)
		}),
		floatField("scale_x", 0.5, (*config.Camera).CurrentScaleX, (*config.Camera).SetScaleX),
		floatField("scale_y", 0.5, (*config.Camera).CurrentScaleY, (*config.Camera).SetScaleY),
		floatField("min_distance", 50, (*config.Camera).MinDistance, (*config.Camera).SetMinDistance),
		floatField("max_distance", 50, (*config.Camera).MaxDistance, (*config.Camera).SetMaxDistance),
		boolField("fixed", (*config.Camera).Fixed, func(c *config.Camera, view config.View, v bool) {
			if c.Fixed() != v {
				c.SetFixed(v, view)
			}
		}),
		floatField("fixed_yaw", 5, (*config.Camera).CurrentFixedYaw, (*config.Camera).SetFixedYaw),
		floatField("fixed_pitch", 5, (*config.Camera).CurrentFixedPitch, (*config.Camera).SetFixedPitch),
		floatField("fixed_rotate_speed_y", 0.5, (*config.Camera).RotateSpeedYaw, (*config.Camera).SetRotateSpeedYaw),
		floatField("fixed_rotate_speed_x", 0.5, (*config.Camera).RotateSpeedPitch, (*config.Camera).SetRotateSpeedPitch),
		boolField("auto_third_person", (*config.Camera).AutoThirdPerson, func(c *config.Camera, _ config.View, v bool) {
			c.SetAutoThirdPerson(v)
		}),
	}
}

// Form edits a live camera one selected field at a time.
type Form struct {
	cam      *config.Camera
	view     config.View
	fields   []Field
	selected int
	initial  *store.Record
}

// Open creates a form over cam.
func Open(cam *config.Camera, view config.View) *Form {
	return &Form{
		cam:     cam,
		view:    view,
		fields:  Fields(),
		initial: cam.Record(),
	}
}

// Fields returns the form's fields.
func (f *Form) Fields() []Field {
	return f.fields
}

// Selected returns the index of the selected field.
func (f *Form) Selected() int {
	return f.selected
}

// Next selects the following field, wrapping around.
func (f *Form) Next() {
	f.selected = (f.selected + 1) % len(f.fields)
}

// Prev selects the preceding field, wrapping around.
func (f *Form) Prev() {
	f.selected = (f.selected + len(f.fields) - 1) % len(f.fields)
}

// Adjust moves the selected float field by dir steps, or flips a bool field.
func (f *Form) Adjust(dir int) {
	field := f.fields[f.selected]
	switch field.Kind {
	case Bool:
		field.SetBool(f.cam, f.view, !field.Bool(f.cam))
	case Float:
		field.SetFloat(f.cam, field.Float(f.cam)+float32(dir)*field.Step)
	}
}

// Activate flips the selected bool field.
func (f *Form) Activate() {
	if field := f.fields[f.selected]; field.Kind == Bool {
		field.SetBool(f.cam, f.view, !field.Bool(f.cam))
	}
}

// Value renders the value of field i.
func (f *Form) Value(i int) string {
	return f.fields[i].Format(f.cam)
}

// Close reports whether the form changed the camera since it was opened.
func (f *Form) Close() bool {
	return !proto.Equal(f.initial, f.cam.Record())
}
