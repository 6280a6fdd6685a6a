package dictionary

import (
	"encoding/json"
	"math/rand"
	"os"
	"path"
	"time"

	"github.com/gofrs/flock"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultDirCreationPerm is used when creating directories for dictionary
// files.
const DefaultDirCreationPerm = os.FileMode(0755)

// fileFormat is the persisted envelope: the case-sensitivity flag must
// travel with the entries, otherwise lookups against a reloaded dictionary
// change meaning.
type fileFormat struct {
	CaseSensitive bool    `json:"caseSensitive"`
	Entries       []Entry `json:"entries"`
}

// Save writes the dictionary to filePath as gzip-compressed JSON.
//
// It writes to filePath+".tmp" and then atomically moves it to filePath, and
// uses a temporary filePath+".lock" to coordinate multiple processes writing
// the same file at the same time.
func (d *Dictionary) Save(filePath string) error {
	if err := os.MkdirAll(path.Dir(filePath), DefaultDirCreationPerm); err != nil {
		return errors.Wrapf(err, "failed to create directory for dictionary %q", filePath)
	}

	lockPath := filePath + ".lock"
	var mainErr error
	errLock := execOnFileLock(lockPath, func() {
		tmpPath := filePath + ".tmp"
		tmpFile, err := os.Create(tmpPath)
		if err != nil {
			mainErr = errors.Wrapf(err, "creating temporary dictionary file %q", tmpPath)
			return
		}
		var tmpFileClosed bool
		defer func() {
			// If we exit with an error, close and remove the unfinished temporary file.
			if !tmpFileClosed {
				if err := tmpFile.Close(); err != nil {
					klog.Warningf("Failed closing temporary file %q: %v", tmpPath, err)
				}
				if err := os.Remove(tmpPath); err != nil {
					klog.Warningf("Failed removing temporary file %q: %v", tmpPath, err)
				}
			}
		}()

		zw := gzip.NewWriter(tmpFile)
		enc := json.NewEncoder(zw)
		if err := enc.Encode(fileFormat{CaseSensitive: d.caseSensitive, Entries: d.Entries()}); err != nil {
			mainErr = errors.Wrapf(err, "encoding dictionary to %q", tmpPath)
			return
		}
		if err := zw.Close(); err != nil {
			mainErr = errors.Wrapf(err, "finishing compressed dictionary %q", tmpPath)
			return
		}

		tmpFileClosed = true
		if err := tmpFile.Close(); err != nil {
			mainErr = errors.Wrapf(err, "failed to close temporary dictionary file %q", tmpPath)
			return
		}
		if err := os.Rename(tmpPath, filePath); err != nil {
			mainErr = errors.Wrapf(err, "failed to move dictionary file %q to %q", tmpPath, filePath)
			return
		}
		if err := os.Remove(lockPath); err != nil {
			klog.Warningf("error removing lock file %q: %v", lockPath, err)
		}
	})
	if mainErr != nil {
		return mainErr
	}
	if errLock != nil {
		return errors.WithMessagef(errLock, "while locking %q to save dictionary", lockPath)
	}
	klog.V(2).Infof("Saved dictionary with %d entries to %q", d.Len(), filePath)
	return nil
}

// Load reads a dictionary written by Save.
func Load(filePath string) (*Dictionary, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dictionary file %q", filePath)
	}
	defer func() {
		if err := f.Close(); err != nil {
			klog.Warningf("Failed closing dictionary file %q: %v", filePath, err)
		}
	}()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dictionary file %q is not gzip compressed", filePath)
	}
	var format fileFormat
	if err := json.NewDecoder(zr).Decode(&format); err != nil {
		return nil, errors.Wrapf(err, "failed to decode dictionary file %q", filePath)
	}
	if err := zr.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed reading compressed dictionary %q", filePath)
	}

	d := New(format.CaseSensitive)
	for _, entry := range format.Entries {
		d.PutEntry(entry)
	}
	klog.V(2).Infof("Loaded dictionary with %d entries from %q", d.Len(), filePath)
	return d, nil
}

// execOnFileLock opens the lockPath file (or creates it if it doesn't yet
// exist), locks it, and executes the function. If lockPath is already
// locked, it polls with a 1 to 2 second period until it acquires the lock.
func execOnFileLock(lockPath string, fn func()) (err error) {
	fileLock := flock.New(lockPath)
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return errors.Wrapf(err, "while trying to lock %q", lockPath)
		}
		if locked {
			break
		}
		time.Sleep(time.Millisecond * time.Duration(1000+rand.Intn(1000)))
	}

	// Unlock in a deferred function, so it happens even if fn panics.
	defer func() {
		unlockErr := fileLock.Unlock()
		if unlockErr != nil {
			if err == nil {
				err = errors.Wrapf(unlockErr, "unlocking file %q", lockPath)
			} else {
				klog.Warningf("Error unlocking file %q: %v", lockPath, unlockErr)
			}
		}
	}()

	fn()
	return
}
