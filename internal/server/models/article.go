package models

// Article is a rentable listing. Article CRUD lives outside this service;
// only the identifier and owner are read here (wishlist join, inquiry FKs).
type Article struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	OwnerID int64  `json:"owner_id"`
}

// WishlistItem is one saved-articles entry, unique per (user, article, owner).
type WishlistItem struct {
	UserID    int64 `json:"user_id"`
	ArticleID int64 `json:"article_id"`
	OwnerID   int64 `json:"owner_id"`
}
