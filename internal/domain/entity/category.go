package entity

// CategoryAll is the catch-all category filter shown first in the directory.
// The rest of the chips are derived dynamically from the stalls active today.
const CategoryAll = "Todas"
