package cambia

// Checksum is the signature engine's verdict: the locally recomputed
// authenticity string versus the one embedded in the log.
type Checksum struct {
	Calculated string    `json:"calculated"`
	Embedded   string    `json:"embedded"`
	Integrity  Integrity `json:"integrity"`
}

// ParsedLog is everything extracted from a single sub-log.
type ParsedLog struct {
	Ripper            RipperTag    `json:"ripper"`
	RipperVersion     string       `json:"ripper_version"`
	Language          string       `json:"language"`
	ReleaseInfo       ReleaseInfo  `json:"release_info"`
	Drive             string       `json:"drive"`
	MediaType         MediaType    `json:"media_type"`
	ReadMode          ReadMode     `json:"read_mode"`
	AccurateStream    Quartet      `json:"accurate_stream"`
	DefeatAudioCache  Quartet      `json:"defeat_audio_cache"`
	UseC2             Quartet      `json:"use_c2"`
	UseNullSamples    Quartet      `json:"use_null_samples"`
	TestAndCopy       Quartet      `json:"test_and_copy"`
	ReadOffset        *int16       `json:"read_offset,omitempty"`
	GapHandling       Gap          `json:"gap_handling"`
	AudioEncoder      []string     `json:"audio_encoder"`
	Checksum          Checksum     `json:"checksum"`
	Toc               Toc          `json:"toc"`
	Tracks            []TrackEntry `json:"tracks"`
}

// ParsedLogCombined wraps every sub-log recovered from one physical log file
// (a file may concatenate several, one per §4.3) alongside the decoder's
// encoding tag.
type ParsedLogCombined struct {
	Encoding   string      `json:"encoding"`
	ParsedLogs []ParsedLog `json:"parsed_logs"`
}

// CambiaResponse is the top-level, language-neutral record handed to
// downstream consumers.
type CambiaResponse struct {
	ID         string             `json:"id"`
	Parsed     ParsedLogCombined  `json:"parsed"`
	Evaluation any                `json:"evaluation,omitempty"`
}
