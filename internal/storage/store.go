package storage

// Store reads and writes whole text files for the editor.
type Store struct {
	loader *textLoader
	saver  *textSaver
	logger Logger
}

func NewStore(logger Logger, timingTracker TimingTracker, fileTracker FileTracker) *Store {
	return &Store{
		loader: &textLoader{logger: logger, timingTracker: timingTracker, fileTracker: fileTracker},
		saver:  &textSaver{logger: logger, timingTracker: timingTracker, fileTracker: fileTracker},
		logger: logger,
	}
}

func (s *Store) Load(path string) (string, error) {
	text, err := s.loader.Load(path)
	if err != nil {
		s.logger.Error("Store", err, map[string]interface{}{"operation": "load", "path": path})
		return "", err
	}
	return text, nil
}

func (s *Store) Save(path, text string) error {
	if err := s.saver.Save(path, text); err != nil {
		s.logger.Error("Store", err, map[string]interface{}{"operation": "save", "path": path})
		return err
	}
	return nil
}
