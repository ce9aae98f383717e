package store

// Review is a single customer review attached to a product. Reviews are
// immutable once fetched.
type Review struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
}

// Product is one catalog entry. Everything except Stock is immutable after
// the catalog fetch; Stock is decremented at checkout.
type Product struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	ReturnPolicy string   `json:"returnPolicy"`
	Price        float64  `json:"price"`
	Rating       float64  `json:"rating"`
	Stock        int      `json:"stock"`
	Tags         []string `json:"tags"`
	Images       []string `json:"images"`
	Thumbnail    string   `json:"thumbnail"`
	Reviews      []Review `json:"reviews"`
}

// CartLine holds a snapshot copy of a product plus the quantity taken.
// Mutating catalog stock later does not touch lines already in the cart.
type CartLine struct {
	Product  Product
	Quantity int
}

func cloneProduct(p Product) Product {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	out.Images = append([]string(nil), p.Images...)
	out.Reviews = append([]Review(nil), p.Reviews...)
	return out
}

func cloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = CartLine{Product: cloneProduct(l.Product), Quantity: l.Quantity}
	}
	return out
}
