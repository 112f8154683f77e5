package store

import (
	"github.com/gogo/protobuf/proto"
)

// Record is the persisted camera configuration document.
// Field names on the wire are the snake_case protobuf names.
type Record struct {
	Enabled          bool    `protobuf:"varint,1,opt,name=enabled,proto3" json:"enabled,omitempty"`
	SaveEnabledState bool    `protobuf:"varint,2,opt,name=save_enabled_state,json=saveEnabledState,proto3" json:"save_enabled_state,omitempty"`
	ScaleX           float32 `protobuf:"fixed32,3,opt,name=scale_x,json=scaleX,proto3" json:"scale_x,omitempty"`
	ScaleY           float32 `protobuf:"fixed32,4,opt,name=scale_y,json=scaleY,proto3" json:"scale_y,omitempty"`
	MinDistance      float32 `protobuf:"fixed32,5,opt,name=min_distance,json=minDistance,proto3" json:"min_distance,omitempty"`
	MaxDistance      float32 `protobuf:"fixed32,6,opt,name=max_distance,json=maxDistance,proto3" json:"max_distance,omitempty"`
	Fixed            bool    `protobuf:"varint,7,opt,name=fixed,proto3" json:"fixed,omitempty"`
	FixedYaw         float32 `protobuf:"fixed32,8,opt,name=fixed_yaw,json=fixedYaw,proto3" json:"fixed_yaw,omitempty"`
	FixedPitch       float32 `protobuf:"fixed32,9,opt,name=fixed_pitch,json=fixedPitch,proto3" json:"fixed_pitch,omitempty"`
	// RotateSpeedYaw is stored under its historical name, the Y axis speed.
	RotateSpeedYaw   float32 `protobuf:"fixed32,10,opt,name=fixed_rotate_speed_y,json=fixedRotateSpeedY,proto3" json:"fixed_rotate_speed_y,omitempty"`
	RotateSpeedPitch float32 `protobuf:"fixed32,11,opt,name=fixed_rotate_speed_x,json=fixedRotateSpeedX,proto3" json:"fixed_rotate_speed_x,omitempty"`
	AutoThirdPerson  bool    `protobuf:"varint,12,opt,name=auto_third_person,json=autoThirdPerson,proto3" json:"auto_third_person,omitempty"`
}

// Reset implements proto.Message.
func (m *Record) Reset() { *m = Record{} }

// String implements proto.Message.
func (m *Record) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*Record) ProtoMessage() {}

// Clone returns a deep copy of the record.
func (m *Record) Clone() *Record {
	return proto.Clone(m).(*Record)
}
