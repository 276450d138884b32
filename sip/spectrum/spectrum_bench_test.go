package spectrum

import "testing"

func BenchmarkAmplitude(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := make([]complex128, testCase.size)
			for i := range inData {
				inData[i] = complex(float64(i)/10.0, -float64(testCase.size-i)/10.0)
			}

			b.SetBytes(int64(testCase.size * 16))
			b.ResetTimer()

			for range b.N {
				_ = Amplitude(inData)
			}
		})
	}
}

func BenchmarkAmplitudePhase(b *testing.B) {
	inData := make([]complex128, 1024)
	for i := range inData {
		inData[i] = complex(1, -float64(i)*1e-4)
	}

	b.ResetTimer()
	for range b.N {
		_ = AmplitudePhase(inData)
	}
}
