package csv

// Cell builders for optional fields: zero values and nil pointers become
// missing cells instead of serialized zeroes.

func optString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func optInt(v int) any {
	if v == 0 {
		return nil
	}
	return int64(v)
}

func optIntPtr(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func optInt64Ptr(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optFloatPtr(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(v int64) *int {
	out := int(v)
	return &out
}

func int64Ptr(v int64) *int64 {
	out := v
	return &out
}

func floatPtr(v float64) *float64 {
	out := v
	return &out
}
