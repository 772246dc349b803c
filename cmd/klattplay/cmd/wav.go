package cmd

import (
	"encoding/binary"
	"fmt"
	"os"
)

// writeWAV writes mono signed 16-bit PCM samples to a canonical WAV file.
// No corpus example carries a WAV encoder — this is a deliberate stdlib
// exception (see DESIGN.md) rather than a hand-rolled stand-in for
// something the examples already solved with a library.
func writeWAV(path string, sampleRate int, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	const bitsPerSample = 16
	const numChannels = 1
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := len(samples) * 2

	if err := writeChunkHeaders(f, dataSize, sampleRate, byteRate, blockAlign); err != nil {
		return err
	}

	buf := make([]byte, 2)
	for _, s := range samples {
		binary.LittleEndian.PutUint16(buf, uint16(s))
		if _, err := f.Write(buf); err != nil {
			return fmt.Errorf("write wav sample: %w", err)
		}
	}
	return nil
}

func writeChunkHeaders(f *os.File, dataSize, sampleRate, byteRate, blockAlign int) error {
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(header[22:24], 1)  // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], 16) // bits per sample

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	_, err := f.Write(header)
	if err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}
	return nil
}
