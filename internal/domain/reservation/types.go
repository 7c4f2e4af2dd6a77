package reservation

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

func (r RoomType) String() string {
	return string(r)
}

func (r RoomType) IsValid() bool {
	switch r {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite:
		return true
	default:
		return false
	}
}

// Field names match the form inputs the browser posts.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldAdults   Field = "adults"
	FieldChildren Field = "children"
	FieldCheckIn  Field = "checkIn"
	FieldCheckOut Field = "checkOut"
	FieldRoomType Field = "roomType"
)

// Fields lists every draft field in display order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldRoomType,
	FieldAdults,
	FieldChildren,
	FieldCheckIn,
	FieldCheckOut,
}

func (f Field) String() string {
	return string(f)
}

func (f Field) IsValid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return "", ErrUnknownField
	}
	return f, nil
}

// affectsPrice reports whether a change to f requires a new quote.
func (f Field) affectsPrice() bool {
	return f == FieldRoomType || f == FieldAdults || f == FieldChildren
}
