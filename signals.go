package fieldseal

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCodecCreated   = capitan.NewSignal("fieldseal.codec.created", "Codec instantiated")
	SignalEncodeStart    = capitan.NewSignal("fieldseal.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("fieldseal.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("fieldseal.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("fieldseal.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeyIVSlot         = capitan.NewStringKey("iv_slot")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyEncryptedCount = capitan.NewIntKey("encrypted_count")
	KeyDecryptedCount = capitan.NewIntKey("decrypted_count")
)

// emitCodecCreated emits an event when a codec is created.
func emitCodecCreated(ctx context.Context, typeName, ivSlot string) {
	capitan.Emit(ctx, SignalCodecCreated,
		KeyTypeName.Field(typeName),
		KeyIVSlot.Field(ivSlot),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, typeName string, duration time.Duration, encrypted int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyEncryptedCount.Field(encrypted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, typeName string, duration time.Duration, decrypted int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyDecryptedCount.Field(decrypted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
