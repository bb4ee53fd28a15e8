package service

import "go-news-app/internal/data"

// ThreadedComment is a top-level comment with its attached replies. Replies
// never carry replies of their own; the thread is at most two levels deep.
type ThreadedComment struct {
	data.Comment
	Replies []*data.Comment `json:"replies"`
}

// ThreadComments partitions a flat comment list into top-level comments and
// replies, then attaches each reply to its parent. The input order (newest
// first, as fetched) is preserved for both levels.
//
// Replies whose parent_comment_id matches no top-level comment in the input
// set are dropped from the tree, matching the original behavior when a
// parent has been deleted out from under its replies. Every returned entry
// carries a non-nil Replies slice so the JSON shape is stable.
func ThreadComments(comments []*data.Comment) []*ThreadedComment {
	var parents []*data.Comment
	var replies []*data.Comment
	for _, c := range comments {
		if c.ParentCommentID == nil {
			parents = append(parents, c)
		} else {
			replies = append(replies, c)
		}
	}

	threaded := make([]*ThreadedComment, 0, len(parents))
	for _, parent := range parents {
		tc := &ThreadedComment{Comment: *parent, Replies: []*data.Comment{}}
		for _, reply := range replies {
			if *reply.ParentCommentID == parent.ID {
				tc.Replies = append(tc.Replies, reply)
			}
		}
		threaded = append(threaded, tc)
	}
	return threaded
}
