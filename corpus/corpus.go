// Package corpus reads and writes labeled corpora as parquet files. Each
// record is one sentence: its tokens and the per-token tag sequence produced
// by a codec, the wire format exchanged with the statistical trainer.
package corpus

import (
	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/sitedata/opennlp/namefind"
	"github.com/sitedata/opennlp/sequence"
)

// Record is one tagged sentence. Tokens and Tags have the same length.
type Record struct {
	Tokens []string `parquet:"tokens,list"`
	Tags   []string `parquet:"tags,list"`
}

// FromSample encodes a sample into a record using the given codec.
func FromSample(sample *namefind.Sample, codec sequence.Codec) Record {
	tokens := sample.Tokens()
	return Record{
		Tokens: tokens,
		Tags:   codec.Encode(sample.Names(), len(tokens)),
	}
}

// ToSample decodes a record back into a sample using the given codec. It
// fails if the record's tokens and tags disagree in length.
func ToSample(record Record, codec sequence.Codec, documentStart bool) (*namefind.Sample, error) {
	if len(record.Tokens) != len(record.Tags) {
		return nil, errors.Errorf("record has %d tokens but %d tags",
			len(record.Tokens), len(record.Tags))
	}
	return namefind.NewSample(record.Tokens, codec.Decode(record.Tags), documentStart)
}

// ReadFile reads all records from a parquet corpus file.
func ReadFile(filePath string) ([]Record, error) {
	records, err := parquet.ReadFile[Record](filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read corpus file %q", filePath)
	}
	klog.V(2).Infof("Read %d corpus records from %q", len(records), filePath)
	return records, nil
}

// WriteFile writes records to a parquet corpus file, replacing any existing
// file.
func WriteFile(filePath string, records []Record) error {
	if err := parquet.WriteFile(filePath, records); err != nil {
		return errors.Wrapf(err, "failed to write corpus file %q", filePath)
	}
	klog.V(2).Infof("Wrote %d corpus records to %q", len(records), filePath)
	return nil
}
