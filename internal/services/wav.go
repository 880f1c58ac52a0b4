package services

import (
	"bytes"
	"encoding/binary"
	"mime"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSampleRate = 24000
	pcmChannels       = 1
	pcmBitsPerSample  = 16
)

// encodeSpeech turns model audio into a playable file. Raw PCM (audio/L16 or
// audio/pcm) is wrapped in a WAV header; anything else is passed through.
func encodeSpeech(audio *SpeechAudio) (data []byte, ext string, contentType string, duration time.Duration) {
	mediaType, params, err := mime.ParseMediaType(audio.MIMEType)
	if err != nil {
		mediaType = strings.ToLower(audio.MIMEType)
	}
	mediaType = strings.ToLower(mediaType)

	switch mediaType {
	case "audio/l16", "audio/pcm", "":
		rate := defaultSampleRate
		if r, err := strconv.Atoi(params["rate"]); err == nil && r > 0 {
			rate = r
		}
		return wrapPCM(audio.Data, rate), ".wav", "audio/wav", pcmDuration(len(audio.Data), rate)
	case "audio/wav", "audio/x-wav":
		return audio.Data, ".wav", "audio/wav", wavDuration(audio.Data)
	case "audio/mpeg", "audio/mp3":
		return audio.Data, ".mp3", "audio/mpeg", 0
	default:
		return audio.Data, ".bin", mediaType, 0
	}
}

func pcmDuration(size, sampleRate int) time.Duration {
	bytesPerSecond := sampleRate * pcmChannels * pcmBitsPerSample / 8
	if bytesPerSecond == 0 {
		return 0
	}
	return time.Duration(size) * time.Second / time.Duration(bytesPerSecond)
}

// wrapPCM prefixes 16-bit mono PCM with a 44 byte RIFF/WAVE header.
func wrapPCM(pcm []byte, sampleRate int) []byte {
	byteRate := sampleRate * pcmChannels * pcmBitsPerSample / 8
	blockAlign := pcmChannels * pcmBitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(pcmChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(pcmBitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

// wavDuration reads the byte rate and data size of a canonical 44 byte header.
func wavDuration(data []byte) time.Duration {
	if len(data) < 44 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return 0
	}
	byteRate := binary.LittleEndian.Uint32(data[28:32])
	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if byteRate == 0 {
		return 0
	}
	return time.Duration(dataSize) * time.Second / time.Duration(byteRate)
}
