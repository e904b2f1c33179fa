package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseOptions decodes a query string produced by Encode. A leading "?" is
// allowed and unknown keys are ignored. Field lists are split on commas, so
// column names containing commas do not survive a round trip.
func ParseOptions(raw string) (*Options, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, fmt.Errorf("parsing query string: %w", err)
	}

	opts := NewOptions()

	if values.Has(ParamLimit) {
		limit, err := parseInt(ParamLimit, values.Get(ParamLimit))
		if err != nil {
			return nil, err
		}

		opts.WithLimit(limit)
	}

	if values.Has(ParamOffset) {
		offset, err := parseInt(ParamOffset, values.Get(ParamOffset))
		if err != nil {
			return nil, err
		}

		opts.WithOffset(offset)
	}

	if value := values.Get(ParamSort); value != "" {
		sort, err := ParseSort(value)
		if err != nil {
			return nil, err
		}

		opts.WithSort(sort)
	}

	if value := values.Get(ParamFields); value != "" {
		opts.WithFields(strings.Split(value, ",")...)
	}

	opts.Q = values.Get(ParamQ)
	opts.ExpandLevel = values.Get(ParamExpandLevel)

	if values.Has(ParamCount) {
		count, err := strconv.ParseBool(values.Get(ParamCount))
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidBoolean, ParamCount, values.Get(ParamCount))
		}

		opts.Count = count
	}

	return opts, nil
}

func parseInt(key, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidInteger, key, raw)
	}

	return n, nil
}
