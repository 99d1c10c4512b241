package listing

import "trailhub/models"

// ToggleAccessory flips the selected flag of the accessory with the given
// slug ID. Unknown IDs leave the list untouched. An even number of toggles
// returns the list to its original state.
func ToggleAccessory(accessories []models.Accessory, id string) []models.Accessory {
	out := make([]models.Accessory, len(accessories))
	copy(out, accessories)
	for i := range out {
		if out[i].ID == id {
			out[i].Selected = !out[i].Selected
			break
		}
	}
	return out
}

// SelectedAccessories returns only the accessories the lessor offers.
func SelectedAccessories(accessories []models.Accessory) []models.Accessory {
	selected := make([]models.Accessory, 0, len(accessories))
	for _, acc := range accessories {
		if acc.Selected {
			selected = append(selected, acc)
		}
	}
	return selected
}
