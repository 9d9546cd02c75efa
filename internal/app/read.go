package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

func Read(reader io.ReadCloser) ([]byte, error) {
	defer func() {
		err := reader.Close()
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	content, err := io.ReadAll(reader)

	if err != nil {
		return nil, err
	} else if len(content) == 0 {
		return nil, errors.New("no reader content error")
	}

	return content, nil
}

func ReadJSON[T any](content []byte) (*T, error) {
	var t *T
	err := json.Unmarshal(content, &t)

	if err != nil {
		return nil, err
	} else if t == nil {
		// A bare JSON null decodes without error but leaves nothing behind.
		return nil, errors.New("no JSON content error")
	}

	return t, nil
}
