package admin

import "context"

// reconcile writes a drafted list back in two bulk steps: one insert for
// staged records and one upsert for records that already exist remotely.
// The steps fail independently and nothing is rolled back; callers keep the
// draft so the user can correct and retry.
//
// prepare runs on each staged record before insert, cloning it and assigning
// its identity, so a failed insert leaves the draft unsaved.
func reconcile[T any](
	ctx context.Context,
	items []T,
	isNew func(T) bool,
	prepare func(T) T,
	insert func(context.Context, []T) error,
	upsert func(context.Context, []T) error,
) (createErr, updateErr error) {
	var fresh, existing []T
	for _, item := range items {
		if isNew(item) {
			fresh = append(fresh, prepare(item))
		} else {
			existing = append(existing, item)
		}
	}

	if len(fresh) > 0 {
		createErr = insert(ctx, fresh)
	}
	if len(existing) > 0 {
		updateErr = upsert(ctx, existing)
	}
	return createErr, updateErr
}
