package linalg

import (
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger sets the logger used for packing diagnostics. A nil logger
// disables them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// Pack flattens a sequence of 4-tuples into one float32 buffer, four values
// per tuple in the given order. A tuple whose length is not 4 is reported and
// packed anyway: missing slots are 0 and extra values are dropped.
func Pack(tuples [][]float64) []float32 {
	if len(tuples) == 0 {
		log.Debug("pack: empty input")
		return []float32{}
	}

	out := make([]float32, 4*len(tuples))
	for i, t := range tuples {
		if len(t) != 4 {
			log.Error("pack: not a 4-element tuple",
				zap.Int("index", i),
				zap.Int("len", len(t)),
			)
		}
		for k := 0; k < 4 && k < len(t); k++ {
			out[i*4+k] = float32(t[k])
		}
	}
	return out
}

// PackVec4 flattens vectors into one float32 buffer, four values per vector.
func PackVec4(vs []Vec4) []float32 {
	if len(vs) == 0 {
		log.Debug("pack: empty input")
		return []float32{}
	}

	out := make([]float32, 0, 4*len(vs))
	for _, v := range vs {
		out = append(out, float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3]))
	}
	return out
}

// PackMat4 flattens a matrix column by column.
func PackMat4(m Mat4) []float32 {
	f := m.Float32s()
	return f[:]
}

// Unpack reads a packed buffer back four values at a time. Trailing values
// that do not fill a whole vector are ignored.
func Unpack(buf []float32) []Vec4 {
	out := make([]Vec4, 0, len(buf)/4)
	for i := 0; i+4 <= len(buf); i += 4 {
		out = append(out, Vec4{
			float64(buf[i]),
			float64(buf[i+1]),
			float64(buf[i+2]),
			float64(buf[i+3]),
		})
	}
	return out
}
